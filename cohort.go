package goabnorm

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// DiscoverPatients lists the patient stems in dataDir, ordered by the integer
// embedded in each stem ("patient_10" sorts after "patient_2"). A stem is any
// file with a .json sidecar. Stems without digits keep their directory order
// at the front. The sort is stable.
func DiscoverPatients(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("goabnorm: read data directory %s: %w", dataDir, err)
	}
	var stems []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		stems = append(stems, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.SliceStable(stems, func(i, j int) bool {
		return stemNumber(stems[i]) < stemNumber(stems[j])
	})
	return stems, nil
}

// stemNumber concatenates the digits of a stem into one integer, matching the
// file naming scheme patient_<n>.
func stemNumber(stem string) int {
	var digits strings.Builder
	for _, r := range stem {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return -1
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return -1
	}
	return n
}

// LoadCohort loads every stem from dataDir, passing fields through to
// LoadPatient. The returned slice preserves the stem order.
func LoadCohort(dataDir string, stems []string, fields ...string) ([]*Patient, error) {
	patients := make([]*Patient, 0, len(stems))
	for _, stem := range stems {
		p, err := LoadPatient(dataDir, stem, fields...)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, nil
}

// SortByOutcome stably reorders patients so good-outcome patients come first.
// Within each outcome group the incoming order is preserved.
func SortByOutcome(patients []*Patient) {
	sort.SliceStable(patients, func(i, j int) bool {
		return patients[i].GoodOutcome && !patients[j].GoodOutcome
	})
}
