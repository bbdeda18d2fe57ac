package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Promotion advisories (UserWarning class)
	PromInfo         Code = 1000
	PromDtypeChanged Code = 1001

	// Arithmetic / conversion events (RuntimeWarning class)
	OvfInfo          Code = 2000
	OvfArithOverflow Code = 2001
	OvfCastOverflow  Code = 2002

	// Configuration
	CfgInfo        Code = 3000
	CfgUnknownMode Code = 3001
	CfgUnknownOver Code = 3002

	// Snapshot / table drift
	SnapInfo          Code = 4000
	SnapTableDrift    Code = 4001
	SnapSchemaChanged Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:       "Unknown event",
	PromInfo:          "Promotion information",
	PromDtypeChanged:  "Result dtype changed between promotion modes",
	OvfInfo:           "Overflow information",
	OvfArithOverflow:  "Arithmetic overflow",
	OvfCastOverflow:   "Overflow while converting a value",
	CfgInfo:           "Configuration information",
	CfgUnknownMode:    "Unknown promotion mode in configuration",
	CfgUnknownOver:    "Unknown overflow action in configuration",
	SnapInfo:          "Snapshot information",
	SnapTableDrift:    "Promotion table differs from snapshot",
	SnapSchemaChanged: "Snapshot schema version changed",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("PRM%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("OVF%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("SNP%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
