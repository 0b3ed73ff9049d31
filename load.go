package goabnorm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Array names stored in a patient archive.
const (
	FieldAbnormality = "roi_ab"
	FieldResected    = "roi_is_resect"
	FieldTDays       = "t_days"
	FieldInterictal  = "win_interictal"
	FieldPeriictal   = "win_periictal"
	FieldIctal       = "win_ictal"
)

// patientMeta is the JSON sidecar holding the fields a .npy entry cannot:
// strings and scalars.
type patientMeta struct {
	ID          string   `json:"pnt_id"`
	Label       string   `json:"patient_string"`
	GoodOutcome bool     `json:"good_outcome"`
	WinsPerHour int      `json:"n_win_per_hr"`
	ROINames    []string `json:"roi_names"`
}

// LoadPatient reads one patient record from dataDir. stem addresses the pair
// <stem>.npz / <stem>.json. If fields are given, only those archive entries
// are decoded; the JSON sidecar is always read. The seizure-context window
// flags are optional in the archive and stay nil when absent.
func LoadPatient(dataDir, stem string, fields ...string) (*Patient, error) {
	metaPath := filepath.Join(dataDir, stem+".json")
	raw, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("goabnorm: read %s: %w", metaPath, err)
	}
	var meta patientMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("goabnorm: parse %s: %w", metaPath, err)
	}

	a, err := OpenArchive(filepath.Join(dataDir, stem+".npz"))
	if err != nil {
		return nil, err
	}
	defer a.Close()

	want := func(name string) bool {
		if len(fields) == 0 {
			return true
		}
		for _, f := range fields {
			if f == name {
				return true
			}
		}
		return false
	}

	p := &Patient{
		ID:          meta.ID,
		Label:       meta.Label,
		GoodOutcome: meta.GoodOutcome,
		WinsPerHour: meta.WinsPerHour,
		ROINames:    meta.ROINames,
	}

	if want(FieldAbnormality) {
		if p.ROIAbnormality, err = a.Matrix(FieldAbnormality); err != nil {
			return nil, err
		}
	}
	if want(FieldResected) {
		if p.ROIIsResected, err = a.Bools(FieldResected); err != nil {
			return nil, err
		}
	}
	if want(FieldTDays) {
		if p.TDays, err = a.Floats(FieldTDays); err != nil {
			return nil, err
		}
	}
	optional := []struct {
		key string
		dst *[]bool
	}{
		{FieldInterictal, &p.WinInterictal},
		{FieldPeriictal, &p.WinPeriictal},
		{FieldIctal, &p.WinIctal},
	}
	for _, o := range optional {
		if !want(o.key) || !a.Has(o.key) {
			continue
		}
		if *o.dst, err = a.Bools(o.key); err != nil {
			return nil, err
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
