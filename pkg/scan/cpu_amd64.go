//go:build amd64

package scan

import "golang.org/x/sys/cpu"

func init() {
	bulkEnabled = cpu.X86.HasSSE2
}
