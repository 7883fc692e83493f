package ump

import (
	"github.com/rob-gra/midi2/errs"
	"github.com/rob-gra/midi2/flexdata"
)

// FlexDataKind discriminates a decoded flex-data message: one of the five
// single-packet structured setup messages, or a multi-packet Text.
type FlexDataKind uint8

const (
	FlexDataSetTempo FlexDataKind = iota
	FlexDataSetTimeSignature
	FlexDataSetMetronome
	FlexDataSetKeySignature
	FlexDataSetChordName
	FlexDataText
)

// FlexData is a decoded flex-data message; Kind selects exactly one field.
type FlexData struct {
	Kind FlexDataKind

	SetTempo         flexdata.SetTempo
	SetTimeSignature flexdata.SetTimeSignature
	SetMetronome     flexdata.SetMetronome
	SetKeySignature  flexdata.SetKeySignature
	SetChordName     flexdata.SetChordName
	Text             flexdata.Text
}

func dispatchFlexData(words []uint32) (*FlexData, error) {
	bank := flexdata.PacketBank(words[0])
	status := flexdata.PacketStatus(words[0])

	if bank == flexdata.BankSetupAndPerformance {
		switch status {
		case flexdata.StatusSetTempo:
			m, err := (flexdata.SetTempo{}).FromUMP(words)
			if err != nil {
				return nil, err
			}
			return &FlexData{Kind: FlexDataSetTempo, SetTempo: m}, nil
		case flexdata.StatusSetTimeSignature:
			m, err := (flexdata.SetTimeSignature{}).FromUMP(words)
			if err != nil {
				return nil, err
			}
			return &FlexData{Kind: FlexDataSetTimeSignature, SetTimeSignature: m}, nil
		case flexdata.StatusSetMetronome:
			m, err := (flexdata.SetMetronome{}).FromUMP(words)
			if err != nil {
				return nil, err
			}
			return &FlexData{Kind: FlexDataSetMetronome, SetMetronome: m}, nil
		case flexdata.StatusSetKeySignature:
			m, err := (flexdata.SetKeySignature{}).FromUMP(words)
			if err != nil {
				return nil, err
			}
			return &FlexData{Kind: FlexDataSetKeySignature, SetKeySignature: m}, nil
		case flexdata.StatusSetChordName:
			m, err := (flexdata.SetChordName{}).FromUMP(words)
			if err != nil {
				return nil, err
			}
			return &FlexData{Kind: FlexDataSetChordName, SetChordName: m}, nil
		default:
			return nil, errs.NewInvalidData(errs.ReasonBadDiscriminant)
		}
	}

	kind, ok := flexdata.TextKindFromBankStatus(bank, status)
	if !ok {
		return nil, errs.NewInvalidData(errs.ReasonBadDiscriminant)
	}
	t, err := flexdata.FromUMP(words, kind)
	if err != nil {
		return nil, err
	}
	return &FlexData{Kind: FlexDataText, Text: t}, nil
}
