package scenarioid

import "strings"

// Normalize canonicalizes scenario names and reference aliases.
func Normalize(name string) string {
	normalized := strings.TrimSpace(strings.ToLower(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.Trim(normalized, "-")
	if normalized == "" {
		return ""
	}
	if canonical, ok := normalizeKnownAlias(normalized); ok {
		return canonical
	}
	return normalized
}

func normalizeKnownAlias(normalized string) (string, bool) {
	for _, candidate := range aliasCandidates(normalized) {
		if canonical, ok := canonicalScenarioName(candidate); ok {
			return canonical, true
		}
	}
	return "", false
}

func aliasCandidates(normalized string) []string {
	candidate := strings.TrimPrefix(normalized, "scenario-")
	if candidate == normalized {
		candidate = strings.TrimPrefix(candidate, "scenario")
	}
	candidate = strings.Trim(candidate, "-")

	candidates := []string{normalized}
	if candidate != "" && candidate != normalized {
		candidates = append(candidates, candidate)
	}

	trimmedCandidate := trimEnvSuffix(candidate)
	if trimmedCandidate != "" && trimmedCandidate != candidate {
		candidates = append(candidates, trimmedCandidate)
	}

	trimmedNormalized := trimEnvSuffix(normalized)
	if trimmedNormalized != "" &&
		trimmedNormalized != normalized &&
		trimmedNormalized != candidate &&
		trimmedNormalized != trimmedCandidate {
		candidates = append(candidates, trimmedNormalized)
	}
	return candidates
}

func trimEnvSuffix(value string) string {
	switch {
	case strings.HasSuffix(value, "-env"):
		return strings.TrimSuffix(value, "-env")
	case strings.HasSuffix(value, "env") && !strings.Contains(value, "-"):
		return strings.TrimSuffix(value, "env")
	default:
		return value
	}
}

func canonicalScenarioName(alias string) (string, bool) {
	switch alias {
	case "sparse":
		return "sparse", true
	case "multitask":
		return "multitask", true
	case "distractive":
		return "distractive", true
	}

	compact := strings.ReplaceAll(alias, "-", "")
	switch compact {
	case "sparse", "sparsenav", "sparsenavigation":
		return "sparse", true
	case "multitask", "twotask":
		return "multitask", true
	case "distractive", "distraction", "noisytv":
		return "distractive", true
	default:
		return "", false
	}
}
