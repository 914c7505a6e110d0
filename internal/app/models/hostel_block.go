package models

// HostelBlock is one of the four delivery destinations. The set is closed;
// orders carrying anything else are dropped from grouped views.
type HostelBlock string

const (
	HostelBlockA HostelBlock = "A"
	HostelBlockB HostelBlock = "B"
	HostelBlockC HostelBlock = "C"
	HostelBlockD HostelBlock = "D"
)

// HostelBlocks lists every deliverable block in display order.
var HostelBlocks = []HostelBlock{HostelBlockA, HostelBlockB, HostelBlockC, HostelBlockD}

func (b HostelBlock) Valid() bool {
	switch b {
	case HostelBlockA, HostelBlockB, HostelBlockC, HostelBlockD:
		return true
	}
	return false
}
