package testutil

// DefaultJobHCL is a small, fully valid job used as a baseline by tests that
// only want to perturb one block. It searches three code distances against a
// one- or two-round factory.
const DefaultJobHCL = `
profile {
  logical_qubits    = 100
  magic_state_count = 1000
  rotation_count    = 0
  logical_depth     = 10000
}

budget {
  total = 0.01
}

context {
  preset = "gate-ns-e4"
}

code "surface" "main" {
  distance = { min = 3, max = 7, step = 2 }
}

factory "tfactory" "t1" {
  rounds = [1, 2]
  copies = 1
}
`

// DefaultJobFiles wraps DefaultJobHCL as a harness file map.
func DefaultJobFiles() map[string]string {
	return map[string]string{"main.hcl": DefaultJobHCL}
}
