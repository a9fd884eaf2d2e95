package extract

import "strings"

// claimTypeBuckets are checked in order; the first bucket with a
// keyword hit decides the inferred claim type
var claimTypeBuckets = []struct {
	claimType string
	keywords  []string
}{
	{"injury", []string{
		"injury", "injured", "hurt", "pain", "hospital", "ambulance",
		"medical", "whiplash", "fracture", "broken bone", "concussion",
		"emergency room", "paramedic", "laceration",
	}},
	{"theft", []string{
		"stolen", "theft", "robbery", "burglary", "break-in",
		"missing vehicle", "car stolen", "auto theft",
	}},
	{"fire", []string{"fire", "burned", "arson", "smoke", "flame", "ignite"}},
	{"water_damage", []string{
		"flood", "water", "leak", "pipe burst", "rain", "storm", "hurricane",
	}},
	{"vandalism", []string{
		"vandal", "graffiti", "broken window", "keyed", "scratched",
		"malicious", "intentional",
	}},
	{"vehicle_damage", []string{
		"vehicle", "car", "truck", "auto", "accident", "collision",
		"crash", "wreck", "rear-end", "bumper",
	}},
}

// CanonicalClaimType folds a stated claim type into the inference
// vocabulary: lowercase, underscores for spaces. "Vehicle Damage" and
// "vehicle_damage" are the same claim type to validation, fraud
// scoring, and routing alike.
func CanonicalClaimType(value string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), " ", "_")
}

// InferClaimType buckets a loss description into a claim type by
// keyword presence. An empty description yields no inference; a
// non-empty one without keyword hits defaults to property damage.
func InferClaimType(description string) string {
	if description == "" {
		return ""
	}

	lower := strings.ToLower(description)
	for _, bucket := range claimTypeBuckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				return bucket.claimType
			}
		}
	}
	return "property_damage"
}
