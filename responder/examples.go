/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responder

// Example issue bodies used by local mode.
const (
	FeatureRequestExample = `### Is there an existing issue for this?

- [x] I have searched the existing issues

### Description

The Azure Container Apps module does not expose the workload profile settings of the managed environment.
Could you add support for dedicated workload profiles? It would be great to configure them from the module
instead of patching the environment afterwards. Is the feature already available in Azure?`

	BugReportExample = `### Is there an existing issue for this?

- [x] I have searched the existing issues

### Description

When I enable private endpoints on the storage account module the apply fails with:

` + "```" + `
Error: creating Private Endpoint: unexpected status 400 with error: InvalidRequestFormat
` + "```" + `

It worked before I upgraded the module.`
)
