package naming

import (
	"path"
	"path/filepath"
	"strings"
)

// SplitName moves any leading path segments of name onto directory, so that
// "apps/my-app" with no directory is treated as name "my-app" in "apps".
func SplitName(name, directory string) (string, string) {
	name = strings.Trim(name, "/")
	idx := strings.LastIndex(name, "/")
	if idx < 0 {
		return name, directory
	}
	return name[idx+1:], cleanJoin(directory, name[:idx])
}

// SimpleProjectName returns the kebab-cased last path segment of name.
func SimpleProjectName(name string) string {
	simple, _ := SplitName(name, "")
	return FileName(simple)
}

// ProjectName returns the workspace-unique project name. The directory is
// prefixed unless simpleName is set or there is no directory.
func ProjectName(simple, directory string, simpleName bool) string {
	dir := normalizeDirectory(directory)
	if simpleName || dir == "" {
		return simple
	}
	return strings.ReplaceAll(dir, "/", "-") + "-" + simple
}

// ProjectDirectory returns the project's path below the build root.
func ProjectDirectory(simple, directory string) string {
	dir := normalizeDirectory(directory)
	if dir == "" {
		return simple
	}
	return dir + "/" + simple
}

// ProjectRoot returns the project root relative to the workspace root.
func ProjectRoot(rootDirectory, projectDirectory string) string {
	root := strings.Trim(rootDirectory, "/")
	if root == "" || root == "." {
		return path.Clean(projectDirectory)
	}
	return path.Join(root, projectDirectory)
}

// ParseTags splits a comma-delimited tag string into trimmed, non-empty tags in
// input order. Absent input yields an empty slice.
func ParseTags(tags string) []string {
	parsed := []string{}
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			parsed = append(parsed, tag)
		}
	}
	return parsed
}

// PackageName derives a Java package from a groupId and project name.
func PackageName(groupID, simple string) string {
	suffix := strings.ToLower(nonAlnum.ReplaceAllString(simple, ""))
	groupID = strings.Trim(groupID, ".")
	switch {
	case groupID == "":
		return suffix
	case suffix == "":
		return groupID
	default:
		return groupID + "." + suffix
	}
}

// PackageDirectory converts a Java package to a slash path.
func PackageDirectory(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

// OffsetFromRoot returns the relative path from root back to the workspace root,
// with a trailing slash ("apps/my-app" gives "../../").
func OffsetFromRoot(root string) string {
	root = path.Clean(root)
	if root == "." || root == "" {
		return ""
	}
	return strings.Repeat("../", len(strings.Split(root, "/")))
}

// RelativePath returns the slash path leading from one workspace-relative
// directory to another. Empty paths denote the workspace root.
func RelativePath(from, to string) string {
	rel, err := filepath.Rel(filepath.FromSlash(rootOrDot(from)), filepath.FromSlash(rootOrDot(to)))
	if err != nil {
		return rootOrDot(to)
	}
	return path.Clean(filepath.ToSlash(rel))
}

func rootOrDot(p string) string {
	return path.Clean(strings.Trim(p, "/"))
}

// normalizeDirectory kebab-cases every segment of a directory path.
func normalizeDirectory(directory string) string {
	directory = strings.Trim(path.Clean("/"+directory), "/")
	if directory == "" {
		return ""
	}
	parts := strings.Split(directory, "/")
	for i, p := range parts {
		parts[i] = FileName(p)
	}
	return strings.Join(parts, "/")
}

func cleanJoin(a, b string) string {
	joined := strings.Trim(path.Join(a, b), "/")
	if joined == "." {
		return ""
	}
	return joined
}
