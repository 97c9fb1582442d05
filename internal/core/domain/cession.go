package domain

import "github.com/atlascompta/compta_backend/internal/apperrors"

// ApplyCession transfers parts from cedant to cessionnaire within the
// associate list, creating missing associates at zero parts. A zero or
// negative parts value is a no-op.
//
// In the default mode the cedant's count is floored at zero: an
// over-transfer silently absorbs the shortfall, matching the historical
// behavior where over-transfers were only caught at the UI level. With
// strict set, an over-transfer is rejected with ErrInsufficientParts and the
// list is left untouched.
//
// The returned slice shares backing storage with the input; persistence is
// the caller's responsibility.
func ApplyCession(associates []Associate, societeID, cedant, cessionnaire string, parts int64, strict bool) ([]Associate, error) {
	if parts <= 0 {
		return associates, nil
	}

	cedantIdx := findAssociate(associates, cedant)
	if strict && (cedantIdx < 0 || associates[cedantIdx].PartsCount < parts) {
		return associates, apperrors.ErrInsufficientParts
	}
	if cedantIdx < 0 {
		associates = append(associates, Associate{SocieteID: societeID, Name: cedant})
		cedantIdx = len(associates) - 1
	}

	cessIdx := findAssociate(associates, cessionnaire)
	if cessIdx < 0 {
		associates = append(associates, Associate{SocieteID: societeID, Name: cessionnaire})
		cessIdx = len(associates) - 1
	}

	remaining := associates[cedantIdx].PartsCount - parts
	if remaining < 0 {
		remaining = 0
	}
	associates[cedantIdx].PartsCount = remaining
	associates[cessIdx].PartsCount += parts

	return associates, nil
}

func findAssociate(associates []Associate, name string) int {
	for i := range associates {
		if associates[i].Name == name {
			return i
		}
	}
	return -1
}
