// SPDX-FileCopyrightText: 2026 The bgpaf-operator authors
// SPDX-License-Identifier: Apache-2.0
package v1alpha1

// LocalObjectReference contains enough information to locate a
// referenced object inside the same namespace.
// +structType=atomic
type LocalObjectReference struct {
	// Name of the referent.
	// More info: https://kubernetes.io/docs/concepts/overview/working-with-objects/names/#names
	// +required
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:validation:MaxLength=63
	Name string `json:"name"`
}
