// Command taskctl is the operator CLI: migrations, the MCP tool server and local
// account bootstrap.
package main

func main() {
	Execute()
}
