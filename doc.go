// Package thordatamcp provides a Go library for exposing Thordata's web
// search and scraping APIs as tools over the Model Context Protocol. It
// takes a library-first approach, so the tools can be embedded in other
// Go applications as easily as they are served over MCP stdio.
//
// The core types are:
//
//   - [Tool] and [TypedTool] define callable tools that an MCP host can invoke.
//   - [ToolResult] captures the output of a tool call, with errors carried
//     as data so a malformed call never crashes the host.
//   - [TypedToolAdapter] bridges a strongly typed tool into the untyped
//     calling convention used on the wire.
//
// # Quick Start
//
//	client, _ := thordata.New()
//	tool := toolkit.NewSearchTool(toolkit.SearchToolOptions{
//	    Searcher: client,
//	})
//	result, _ := tool.Call(ctx, json.RawMessage(`{"query": "golang"}`))
//	fmt.Println(result.Text())
//
// Built-in tools are available in the
// [github.com/thordata/thordata-mcp/toolkit] package. The MCP stdio
// server wrapper is in [github.com/thordata/thordata-mcp/mcpserver].
package thordatamcp
