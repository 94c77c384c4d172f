// mageos-dashboard queries the GitHub GraphQL API for the Mage-OS
// organization's repositories, open issues and open pull requests, and
// writes a single static HTML dashboard to dist/index.html.
package main

import "github.com/mage-os/github-dashboard/cmd"

func main() {
	cmd.Execute()
}
