//go:build !amd64 && !arm64

package scan

// Other architectures use the scalar loops. The word paths stay correct there
// and are still exercised by the tests.
func init() {
	bulkEnabled = false
}
