package core

import "strings"

// StatusHealthy is the fixed response of the status check tool.
const StatusHealthy = "Server is running and healthy!"

// AnalyzeSafety checks DAML code for the basic safety gate markers.
// It is a keyword-presence heuristic, not a real analyzer.
func AnalyzeSafety(code string) string {
	lower := strings.ToLower(code)

	var issues []string
	if !strings.Contains(lower, "signatory") {
		issues = append(issues, "Warning: No signatories defined. This contract might be unauthorized.")
	}
	if !strings.Contains(lower, "controller") {
		issues = append(issues, "Warning: No controllers defined. The contract may be immutable/unusable.")
	}

	if len(issues) == 0 {
		return "✅ DAML code passes basic safety gate analysis."
	}
	return "❌ Safety Issues Found:\n- " + strings.Join(issues, "\n- ")
}

// DeploymentScript returns a starter deployment script for the given
// Canton network type. Anything other than "prod" gets the dev script.
func DeploymentScript(networkType string) string {
	if networkType == "prod" {
		return "# PROD DEPLOYMENT\n# 1. Verify DCAP settings\n# 2. Check x402 payment routes\n# 3. Submit to Canton Ledger"
	}
	return "# DEV DEPLOYMENT\n# 1. daml build\n# 2. daml ledger upload-dar --host localhost --port 6865"
}
