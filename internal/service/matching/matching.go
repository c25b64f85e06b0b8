// Package matching implements the eligibility matcher: the pure function
// from a farmer profile to the subset of schemes the profile qualifies for.
package matching

import "github.com/agron-app/agron/internal/domain/models"

// Match returns the schemes whose eligibility criteria include both the
// profile's crop and its land size, preserving the declaration order of
// schemes. A profile missing either selection matches nothing. A scheme with
// an empty crop or land-size set matches nobody; an empty set means no one
// qualifies, not everyone.
func Match(profile models.FarmerProfile, schemes []models.Scheme) []models.Scheme {
	if !profile.Complete() {
		return nil
	}

	var matched []models.Scheme
	for _, scheme := range schemes {
		if scheme.Eligibility.AllowsCrop(*profile.Crop) && scheme.Eligibility.AllowsLandSize(*profile.LandSize) {
			matched = append(matched, scheme)
		}
	}
	return matched
}
