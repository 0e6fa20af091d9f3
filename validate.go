package reve

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// validatePrompt checks a prompt or edit instruction. The field label
// is caller-supplied so the same check serves both contexts.
func validatePrompt(field, value string) error {
	if value == "" {
		return &ValidationError{Message: field + " is required"}
	}
	if utf8.RuneCountInString(value) > MaxPromptLength {
		return &ValidationError{Message: fmt.Sprintf(
			"%s exceeds maximum length of %d characters", field, MaxPromptLength)}
	}
	return nil
}

// validateAspectRatio accepts "" (use the server default) or one of the
// tokens in AspectRatios.
func validateAspectRatio(ratio string) error {
	if ratio == "" {
		return nil
	}
	for _, valid := range AspectRatios {
		if ratio == valid {
			return nil
		}
	}
	return &ValidationError{Message: fmt.Sprintf(
		"Invalid aspect ratio %q: must be one of %s", ratio, strings.Join(AspectRatios, ", "))}
}

func validateReferenceImage(image string) error {
	if image == "" {
		return &ValidationError{Message: "Reference image is required"}
	}
	return nil
}

// validateReferenceImages reports the lowest offending index when an
// element is empty.
func validateReferenceImages(images []string) error {
	if len(images) == 0 {
		return &ValidationError{Message: "Reference images are required"}
	}
	if len(images) > MaxReferenceImages {
		return &ValidationError{Message: fmt.Sprintf(
			"Maximum %d reference images allowed", MaxReferenceImages)}
	}
	for i, image := range images {
		if image == "" {
			return &ValidationError{Message: fmt.Sprintf(
				"Reference image at index %d is empty", i)}
		}
	}
	return nil
}
