package app

import (
	"encoding/xml"
	"fmt"
)

// MissingElementError reports a record without one of its required elements
type MissingElementError struct {
	Record  string
	Element string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("<%s> is missing required element <%s>", e.Record, e.Element)
}

type requiredElement struct {
	name    string
	present bool
}

func checkRequired(record string, elements ...requiredElement) error {
	for _, el := range elements {
		if !el.present {
			return &MissingElementError{Record: record, Element: el.name}
		}
	}
	return nil
}

// weaponFields has the same shape as WeaponRecord without its UnmarshalXML
type weaponFields WeaponRecord

// UnmarshalXML decodes a <WEAPON> and fails when an element every weapon
// carries is absent. Optional elements stay nil.
func (w *WeaponRecord) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	// Shallower fields win over the embedded ones, so the required elements
	// land in the pointers below and can be checked for presence.
	var aux struct {
		weaponFields
		Index                *uint32 `xml:"uiIndex"`
		Name                 *string `xml:"szWeaponName"`
		Accuracy             *int32  `xml:"bAccuracy"`
		BurstPenalty         *uint32 `xml:"ubBurstPenalty"`
		AutoPenalty          *uint32 `xml:"AutoPenalty"`
		MaxDistForMessyDeath *uint32 `xml:"MaxDistForMessyDeath"`
	}
	if err := d.DecodeElement(&aux, &start); err != nil {
		return err
	}

	if err := checkRequired(start.Name.Local,
		requiredElement{"uiIndex", aux.Index != nil},
		requiredElement{"szWeaponName", aux.Name != nil},
		requiredElement{"bAccuracy", aux.Accuracy != nil},
		requiredElement{"ubBurstPenalty", aux.BurstPenalty != nil},
		requiredElement{"AutoPenalty", aux.AutoPenalty != nil},
		requiredElement{"MaxDistForMessyDeath", aux.MaxDistForMessyDeath != nil},
	); err != nil {
		return err
	}

	*w = WeaponRecord(aux.weaponFields)
	w.Index = *aux.Index
	w.Name = *aux.Name
	w.Accuracy = *aux.Accuracy
	w.BurstPenalty = *aux.BurstPenalty
	w.AutoPenalty = *aux.AutoPenalty
	w.MaxDistForMessyDeath = *aux.MaxDistForMessyDeath
	return nil
}

type itemFields ItemRecord

// UnmarshalXML decodes an <ITEM> and fails when its identifier, names,
// description or class is absent
func (it *ItemRecord) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var aux struct {
		itemFields
		Index       *uint32 `xml:"uiIndex"`
		Name        *string `xml:"szItemName"`
		LongName    *string `xml:"szLongItemName"`
		Description *string `xml:"szItemDesc"`
		Class       *uint32 `xml:"usItemClass"`
	}
	if err := d.DecodeElement(&aux, &start); err != nil {
		return err
	}

	if err := checkRequired(start.Name.Local,
		requiredElement{"uiIndex", aux.Index != nil},
		requiredElement{"szItemName", aux.Name != nil},
		requiredElement{"szLongItemName", aux.LongName != nil},
		requiredElement{"szItemDesc", aux.Description != nil},
		requiredElement{"usItemClass", aux.Class != nil},
	); err != nil {
		return err
	}

	*it = ItemRecord(aux.itemFields)
	it.Index = *aux.Index
	it.Name = *aux.Name
	it.LongName = *aux.LongName
	it.Description = *aux.Description
	it.Class = *aux.Class
	return nil
}

type ammoFields AmmoRecord

// UnmarshalXML decodes an <AMMO> and fails without both of its elements
func (a *AmmoRecord) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var aux struct {
		ammoFields
		Index       *uint32 `xml:"uiIndex"`
		CaliberName *string `xml:"AmmoCaliber"`
	}
	if err := d.DecodeElement(&aux, &start); err != nil {
		return err
	}

	if err := checkRequired(start.Name.Local,
		requiredElement{"uiIndex", aux.Index != nil},
		requiredElement{"AmmoCaliber", aux.CaliberName != nil},
	); err != nil {
		return err
	}

	*a = AmmoRecord(aux.ammoFields)
	a.Index = *aux.Index
	a.CaliberName = *aux.CaliberName
	return nil
}
