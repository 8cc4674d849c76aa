package bitfield

// Uint is the set of types a storage unit or field value can have. Named
// types over these underlying types satisfy it, which is how enum-style
// values flow through Get and Set.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// callConfig reduces the optional trailing Config of a get/set call to a
// single value. Only the first config is consulted.
func callConfig(cfgs []Config) Config {
	if len(cfgs) == 0 {
		return Config{}
	}
	return cfgs[0]
}
