// Package mbrecord provides an alternate sink that collects decoded
// instructions and renders them as YAML, for callers that want structured
// output instead of a printed disassembly listing.
package mbrecord

import (
	"gopkg.in/yaml.v3"

	"github.com/schaban/mbdisasm/pkg/mbdecoder"
)

// RecordDump is the YAML-serializable form of a decoded mbdecoder.Record.
// Register/immediate fields that the instruction doesn't use are omitted
// rather than emitted as -1, since YAML consumers shouldn't need to know
// about the decoder's internal "no operand" sentinel.
type RecordDump struct {
	Addr     uint32 `yaml:"addr"`
	Code     uint32 `yaml:"code"`
	Mnemonic string `yaml:"mnemonic"`
	RD       *int32 `yaml:"rd,omitempty"`
	RA       *int32 `yaml:"ra,omitempty"`
	RB       *int32 `yaml:"rb,omitempty"`
	Imm      *int32 `yaml:"imm,omitempty"`
}

func dump(r mbdecoder.Record) RecordDump {
	d := RecordDump{Addr: r.Addr, Code: r.Code, Mnemonic: r.Mnemonic}
	if r.RD >= 0 {
		d.RD = ref(r.RD)
	}
	if r.RA >= 0 {
		d.RA = ref(r.RA)
	}
	if r.HasThirdOperand {
		if r.RB >= 0 {
			d.RB = ref(r.RB)
		} else {
			d.Imm = ref(r.Imm)
		}
	}
	return d
}

func ref(v int32) *int32 { return &v }

// YAMLSink collects every Record passed to its Collect method, in the
// order received, for later marshaling via Marshal.
type YAMLSink struct {
	records []RecordDump
}

// Collect satisfies mbdisasm.Sink.
func (s *YAMLSink) Collect(r mbdecoder.Record) {
	s.records = append(s.records, dump(r))
}

// Marshal renders every collected Record as a YAML document.
func (s *YAMLSink) Marshal() ([]byte, error) {
	return yaml.Marshal(s.records)
}

// Len reports how many records have been collected so far.
func (s *YAMLSink) Len() int { return len(s.records) }
