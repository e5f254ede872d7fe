package config

// Codec converts between file contents and a section tree.
//
// Decode returns a standalone section (see NewSection); the configuration copies its entries into
// its own tree. Encode receives a detached snapshot and may call any Section method on it.
// Implementations must keep key order and round-trip int32, int64, float64, bool and string kinds.
type Codec interface {
	Decode(data []byte) (*Section, error)
	Encode(root *Section) ([]byte, error)
}
