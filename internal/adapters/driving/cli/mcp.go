package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can plan
study sessions, extract syllabus topics and read stored subjects.

Tools:
  compute_plan    - plan a day from explicit subjects and topics
  extract_topics  - pull candidate topics from syllabus text
  list_exams      - list stored exams with countdowns

By default the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead.

Examples:
  # Stdio mode (default)
  smartstudy mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  smartstudy mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "smartstudy": {
        "command": "/path/to/smartstudy",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	s, err := requireServices()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Plans:    s.Plans,
		Planner:  s.Planner,
		Syllabus: s.Syllabus,
		Subjects: s.Subjects,
		Settings: s.Settings,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
