package generator

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/jvmgen/cli/internal/maven"
	"github.com/jvmgen/cli/internal/plugin"
	"github.com/jvmgen/cli/internal/versions"
)

// Option values.
const (
	ProjectTypeApplication = "application"
	ProjectTypeLibrary     = "library"

	PackagingJar = "jar"
	PackagingWar = "war"
	PackagingPom = "pom"

	ConfigFormatProperties = ".properties"
	ConfigFormatYAML       = ".yml"

	LanguageJava   = "java"
	LanguageKotlin = "kotlin"

	FrameworkNone       = "none"
	FrameworkSpringBoot = "spring-boot"
	FrameworkQuarkus    = "quarkus"
	FrameworkMicronaut  = "micronaut"
)

// Options are the user-supplied generator inputs. The JSON names are the
// field names of the option schema.
type Options struct {
	Name              string `json:"name"`
	Directory         string `json:"directory,omitempty"`
	SimpleName        bool   `json:"simpleName,omitempty"`
	Tags              string `json:"tags,omitempty"`
	ProjectType       string `json:"projectType"`
	GroupID           string `json:"groupId"`
	ProjectVersion    string `json:"projectVersion"`
	ParentProject     string `json:"parentProject,omitempty"`
	AggregatorProject string `json:"aggregatorProject,omitempty"`
	Packaging         string `json:"packaging,omitempty"`
	ConfigFormat      string `json:"configFormat,omitempty"`
	Language          string `json:"language"`
	Framework         string `json:"framework"`
	PackageName       string `json:"packageName,omitempty"`
	SkipFormat        bool   `json:"skipFormat,omitempty"`
}

// NormalizedOptions is Options with every derived value resolved. It is built
// once by Normalize and not modified afterwards.
type NormalizedOptions struct {
	Options

	SimpleProjectName string
	ProjectName       string
	ProjectDirectory  string
	ProjectRoot       string
	ParsedTags        []string
	OffsetFromRoot    string

	// Parent is zero for Gradle projects.
	Parent maven.ParentValues

	Plugin                plugin.Selection
	AggregatorProjectRoot string

	// Application only.
	JavaPackage      string
	PackageDirectory string
	ClassName        string
	MainClass        string

	Versions versions.Table
}

// AggregatorReference locates the build file a new project is registered in.
type AggregatorReference struct {
	ProjectRoot           string
	AggregatorProjectRoot string
	RootDirectory         string
}

// Aggregator returns the aggregator reference of the normalized project.
func (n NormalizedOptions) Aggregator() AggregatorReference {
	return AggregatorReference{
		ProjectRoot:           n.ProjectRoot,
		AggregatorProjectRoot: n.AggregatorProjectRoot,
		RootDirectory:         n.Plugin.RootDirectory,
	}
}

// SourceRoot returns the main source directory for the project's language.
func (n NormalizedOptions) SourceRoot() string {
	if n.Language == "" {
		return ""
	}
	return n.ProjectRoot + "/src/main/" + n.Language
}

// TemplateVars are the values templates see, keyed by their JSON names.
type TemplateVars struct {
	ProjectName          string         `json:"projectName"`
	SimpleProjectName    string         `json:"simpleProjectName"`
	ProjectRoot          string         `json:"projectRoot"`
	ProjectDirectory     string         `json:"projectDirectory"`
	OffsetFromRoot       string         `json:"offsetFromRoot"`
	ProjectType          string         `json:"projectType"`
	GroupID              string         `json:"groupId"`
	ProjectVersion       string         `json:"projectVersion"`
	Packaging            string         `json:"packaging"`
	ParentGroupID        string         `json:"parentGroupId"`
	ParentProjectName    string         `json:"parentProjectName"`
	ParentProjectVersion string         `json:"parentProjectVersion"`
	RelativePath         string         `json:"relativePath"`
	Language             string         `json:"language"`
	Framework            string         `json:"framework"`
	ConfigFormat         string         `json:"configFormat"`
	PackageName          string         `json:"packageName"`
	PackageDirectory     string         `json:"packageDirectory"`
	ClassName            string         `json:"className"`
	MainClass            string         `json:"mainClass"`
	BuildTool            string         `json:"buildTool"`
	BuildTargetName      string         `json:"buildTargetName"`
	Tags                 []string       `json:"tags"`
	Versions             versions.Table `json:"versions"`
}

// TemplateVars returns the template variables for n.
func (n NormalizedOptions) TemplateVars() TemplateVars {
	return TemplateVars{
		ProjectName:          n.ProjectName,
		SimpleProjectName:    n.SimpleProjectName,
		ProjectRoot:          n.ProjectRoot,
		ProjectDirectory:     n.ProjectDirectory,
		OffsetFromRoot:       n.OffsetFromRoot,
		ProjectType:          n.ProjectType,
		GroupID:              n.GroupID,
		ProjectVersion:       n.ProjectVersion,
		Packaging:            n.Packaging,
		ParentGroupID:        n.Parent.GroupID,
		ParentProjectName:    n.Parent.Name,
		ParentProjectVersion: n.Parent.Version,
		RelativePath:         n.Parent.RelativePath,
		Language:             n.Language,
		Framework:            n.Framework,
		ConfigFormat:         n.ConfigFormat,
		PackageName:          n.JavaPackage,
		PackageDirectory:     n.PackageDirectory,
		ClassName:            n.ClassName,
		MainClass:            n.MainClass,
		BuildTool:            string(n.Plugin.Tool),
		BuildTargetName:      n.Plugin.BuildTargetName,
		Tags:                 n.ParsedTags,
		Versions:             n.Versions,
	}
}

// Map converts v into the map form the template renderer consumes.
func (v TemplateVars) Map() (map[string]any, error) {
	var out map[string]any
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
	})
	if err != nil {
		return nil, fmt.Errorf("creating template variable decoder: %w", err)
	}
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("converting template variables: %w", err)
	}
	return out, nil
}
