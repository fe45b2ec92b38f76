// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Nx workspace fixtures.
const (
	MavenNxJSON = `{"plugins": [{"plugin": "@jnxplus/nx-maven", "options": {"mavenRootDirectory": "nx-maven"}}]}`

	GradleNxJSON = `{"plugins": [{"plugin": "@jnxplus/nx-gradle", "options": {"gradleRootDirectory": "nx-gradle"}}]}`

	RootPom = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <groupId>com.example</groupId>
  <artifactId>nx-maven-parent</artifactId>
  <version>0.0.1</version>
  <packaging>pom</packaging>
  <modules>
  </modules>
</project>
`

	GradleSettings = "rootProject.name = \"workspace\"\n"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteFiles writes every name/content pair below dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		WriteFile(t, dir, name, content)
	}
}

// ReadFile returns the content of a file below dir.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// MavenWorkspace creates an Nx workspace with a Maven root aggregator in
// nx-maven and returns its directory.
func MavenWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteFiles(t, dir, map[string]string{
		"nx.json":          MavenNxJSON,
		"nx-maven/pom.xml": RootPom,
	})
	return dir
}

// GradleWorkspace creates an Nx workspace with a Gradle root build in
// nx-gradle and returns its directory.
func GradleWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteFiles(t, dir, map[string]string{
		"nx.json":                       GradleNxJSON,
		"nx-gradle/settings.gradle.kts": GradleSettings,
	})
	return dir
}
