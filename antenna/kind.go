// Package antenna implements closed-form far-field gain pattern synthesis
// for a small set of antenna archetypes.
package antenna

// Kind selects which closed-form pattern formula applies.
type Kind int

const (
	Dipole Kind = iota
	Monopole
	UniformLinearArray
	Generic
)

var KindNames = [...]string{
	"Dipole",
	"Monopole",
	"UniformLinearArray",
	"Generic",
}

func (k Kind) String() string {
	if int(k) >= len(KindNames) || k < 0 {
		return "Unknown!!"
	}
	return KindNames[k]
}
