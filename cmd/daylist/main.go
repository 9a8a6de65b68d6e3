// Command daylist is a local, device-scoped to-do list.
package main

import "github.com/daylist-app/daylist/internal/cli"

func main() {
	cli.Execute()
}
