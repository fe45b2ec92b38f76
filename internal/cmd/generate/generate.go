// Package generate provides CLI command implementations for the generate command group.
package generate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvmgen/cli/internal/cmdtypes"
	"github.com/jvmgen/cli/internal/cmdutil"
	"github.com/jvmgen/cli/internal/config"
	"github.com/jvmgen/cli/internal/generator"
	"github.com/jvmgen/cli/internal/output"
	"github.com/jvmgen/cli/internal/versions"
	"github.com/jvmgen/cli/internal/workspace"
)

// NewGenerateCmd creates the generate command group.
func NewGenerateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g"},
		Short:   "Generate a JVM project in the workspace",
		Long: `Generate a Maven or Gradle project inside an Nx workspace.

The build plugin is detected from nx.json. Generated projects are registered
in the workspace project graph and in their aggregator's build file.`,
	}

	c.AddCommand(NewApplicationCmd(cfg))
	c.AddCommand(NewParentProjectCmd(cfg))

	return c
}

// runGenerator resolves settings, runs gen against the workspace and commits
// or prints the staged changes.
func runGenerator(c *cobra.Command, cfg *cmdtypes.GlobalConfig, gen generator.Generator, opts generator.Options, rf *cmdutil.RunFlags) error {
	loader := cmdutil.Loader(cfg)

	workspaceFlag := ""
	if cfg != nil {
		workspaceFlag = cfg.WorkspaceFlag
	}
	root, err := cmdutil.ResolveWorkspace(loader, workspaceFlag)
	if err != nil {
		return cmdutil.ReportError("workspace not found", err)
	}

	flags := c.Flags()
	plugin := loader.Resolve(config.KeyPlugin, config.Flag(rf.Plugin, flags.Changed("plugin")))
	versionsFile := loader.Resolve(config.KeyVersionsFile, config.Flag(rf.VersionsFile, flags.Changed("versions-file")))
	skipFormat := loader.Resolve(config.KeySkipFormat, config.Flag(rf.SkipFormat, flags.Changed("skip-format")))
	groupID := loader.Resolve(config.KeyGroupID, config.Flag(opts.GroupID, flags.Changed("group-id")))
	projectVersion := loader.Resolve(config.KeyProjectVersion, config.Flag(opts.ProjectVersion, flags.Changed("project-version")))
	xmlIndent := loader.Resolve(config.KeyXMLIndent, config.Flag(0, false))
	config.LogResolvedValues([]config.ResolvedValue{plugin, versionsFile, skipFormat, groupID, projectVersion, xmlIndent})

	opts.GroupID = groupID.String()
	opts.ProjectVersion = projectVersion.String()
	opts.SkipFormat = skipFormat.Bool()

	table, err := versions.Resolve(versionsFile.String())
	if err != nil {
		return cmdutil.ReportError("loading versions", err)
	}

	tree := workspace.NewTree(root)
	host, err := generator.NewWorkspaceHost(tree, table, xmlIndent.Int(), plugin.String())
	if err != nil {
		return cmdutil.ReportError("initializing generator", err)
	}
	host.Formatter = cmdutil.SpinnerFormatter{Formatter: host.Formatter}

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	output.Debug("running generator", "generator", gen.Name(), "workspace", root, "name", opts.Name)
	result, err := gen.Generate(ctx, host, opts)
	if err != nil {
		return cmdutil.ReportError(fmt.Sprintf("%s generator failed", gen.Name()), err)
	}

	changes := tree.Changes()
	if rf.DryRun {
		cmdutil.PrintChanges(changes, true)
		output.Println("")
		output.Println("Dry run: no files were written.")
		return nil
	}

	if err := tree.Commit(); err != nil {
		return cmdutil.ReportError("writing files", err)
	}

	cmdutil.PrintChanges(changes, false)
	if cfg != nil && cfg.Verbose {
		cmdutil.PrintProjectTree(result.ProjectRoot, changes)
	}
	if !result.AggregatorChanged {
		output.Warn("project was already registered with its aggregator", "project", result.ProjectName)
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("Generated %s in %s",
		output.StyleNoun.Render(result.ProjectName), result.ProjectRoot)))
	return nil
}
