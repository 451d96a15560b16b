// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"github.com/comalice/vecx"
	"gopkg.in/yaml.v3"
)

// GenVector builds a vector of n sequential ints through the default
// lifecycle.
func GenVector(n int) *vecx.Vector[int] {
	v, err := vecx.New[int]()
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		if err := v.PushBack(i); err != nil {
			panic(err)
		}
	}
	return v
}

// Payload is a benchmark element whose clone allocates, so relocation cost
// differs visibly between the move and clone policies.
type Payload struct {
	Seq  int
	Data []byte
}

// PayloadLifecycle returns a lifecycle for Payload with the given traits.
// Clone duplicates the data block; move transfers it.
func PayloadLifecycle(caps vecx.Traits) vecx.Lifecycle[Payload] {
	return vecx.Funcs[Payload]{
		CloneFn: func(src *Payload) (Payload, error) {
			data := make([]byte, len(src.Data))
			copy(data, src.Data)
			return Payload{Seq: src.Seq, Data: data}, nil
		},
		Caps: caps,
	}
}

// GenPayloadVector builds a vector of n payloads of payloadBytes each.
func GenPayloadVector(n, payloadBytes int, caps vecx.Traits) *vecx.Vector[Payload] {
	v, err := vecx.New(vecx.WithLifecycle[Payload](PayloadLifecycle(caps)))
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		if err := v.PushBack(Payload{Seq: i, Data: make([]byte, payloadBytes)}); err != nil {
			panic(err)
		}
	}
	return v
}

// DumpYAML renders a vector snapshot for fixture debugging.
func DumpYAML(v *vecx.Vector[int]) []byte {
	snap := struct {
		Len      int   `yaml:"len"`
		Cap      int   `yaml:"cap"`
		Elements []int `yaml:"elements"`
	}{
		Len:      v.Len(),
		Cap:      v.Cap(),
		Elements: v.AppendTo(nil),
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		panic(err)
	}
	return data
}
