package dna

import (
	"encoding/json"
)

// positionRecord is the wire form exchanged with the presentation layer:
// {"base": "A", "modifications": ["Me"], "backbone": "standard"}. The
// modification tags are Me, hMe and fC; acetylation has no tag on the wire.
type positionRecord struct {
	Base          string   `json:"base"`
	Modifications []string `json:"modifications"`
	Backbone      string   `json:"backbone,omitempty"`
}

func (p Position) MarshalJSON() ([]byte, error) {
	mods := make([]string, 0, 3)
	if p.Modifications.Methylated {
		mods = append(mods, "Me")
	}
	if p.Modifications.Hydroxymethylated {
		mods = append(mods, "hMe")
	}
	if p.Modifications.Formylated {
		mods = append(mods, "fC")
	}

	return json.Marshal(positionRecord{
		Base:          p.Base.String(),
		Modifications: mods,
		Backbone:      string(p.Backbone),
	})
}

// UnmarshalJSON reconstructs a position from a collaborator's record. The
// flags come from tag presence, the backbone defaults to standard when
// absent, and the structure takes the codec default.
func (p *Position) UnmarshalJSON(data []byte) error {
	var rec positionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	base, err := ParseBase(rec.Base)
	if err != nil {
		return err
	}

	mods := ModificationState{}
	for _, tag := range rec.Modifications {
		switch tag {
		case "Me":
			mods.Methylated = true
		case "hMe":
			mods.Hydroxymethylated = true
		case "fC":
			mods.Formylated = true
		}
	}

	backbone := Backbone(rec.Backbone)
	if backbone == "" {
		backbone = Standard
	}

	*p = Position{
		Base:          base,
		Modifications: mods,
		Backbone:      backbone,
		Structure:     DefaultStructure,
	}
	return nil
}
