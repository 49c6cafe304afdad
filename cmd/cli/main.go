// FailSum - Function Invocation Failure Summary
//
// FailSum is a batch tool that counts function invocation failures in
// exported log records, grouped by service and failure reason.
package main

import (
	"os"

	"github.com/ccollicutt/failsum/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
