package main

import (
	"fmt"

	linkhttp "github.com/fwojciec/linkdrop/http"
)

// gatedResources lists the quota-gated sources shown by the status
// command.
var gatedResources = []string{linkhttp.XQuotaResource}

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	for _, resource := range gatedResources {
		st := deps.Gate.Status(deps.Ctx, resource)
		fmt.Fprintf(deps.Stdout, "%s: %s\n", st.Resource, st.Summary)
	}
	return nil
}
