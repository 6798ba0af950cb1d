// SPDX-FileCopyrightText: 2026 The bgpaf-operator authors
// SPDX-License-Identifier: Apache-2.0

// Package v1alpha1 contains API Schema definitions for the networking.opennetops.dev v1alpha1 API group.
// +kubebuilder:validation:Required
// +kubebuilder:object:generate=true
// +groupName=networking.opennetops.dev
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is group version used to register these objects.
	GroupVersion = schema.GroupVersion{Group: "networking.opennetops.dev", Version: "v1alpha1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)

// WatchLabel is a label that can be applied to any API object of this group.
//
// Controllers which allow for selective reconciliation may check this label and proceed
// with reconciliation of the object only if this label and a configured value is present.
const WatchLabel = "networking.opennetops.dev/watch-filter"

// FinalizerName is the identifier used by the controllers to perform cleanup before a resource is deleted.
// It is added when the resource is created and ensures that the controller can handle teardown logic
// (e.g., removing configuration from the device) before Kubernetes finalizes the deletion.
const FinalizerName = "networking.opennetops.dev/finalizer"

// DeviceLabel is a label applied to any API object of this group to indicate the device
// it is associated with. This label is used by controllers to filter and manage resources
// based on the device they are intended for.
const DeviceLabel = "networking.opennetops.dev/device-name"

// DeviceKind represents the Kind of Device.
const DeviceKind = "Device"

// Condition types that are used across different objects.
const (
	// ReadyCondition is the top-level status condition that reports if an object is ready.
	// This condition indicates whether the resource is ready to be used and will
	// be calculated by the controller based on child conditions, if present.
	ReadyCondition = "Ready"

	// ConfiguredCondition indicates whether the resource has been successfully configured.
	// This condition indicates whether the desired configuration has been applied to the device
	// (i.e., all necessary API calls succeeded).
	ConfiguredCondition = "Configured"
)

// Reasons that are used across different objects.
const (
	// ReadyReason indicates that the resource is ready for use.
	ReadyReason = "Ready"

	// NotReadyReason indicates that the resource is not ready for use.
	NotReadyReason = "NotReady"

	// ReconcilePendingReason indicates that the controller is waiting for resources to be reconciled.
	ReconcilePendingReason = "ReconcilePending"

	// NotImplementedReason indicates that the provider does not implement the required functionality
	// to support the resource.
	NotImplementedReason = "NotImplemented"

	// ConfiguredReason indicates that the resource has been successfully configured.
	ConfiguredReason = "Configured"

	// InSyncReason indicates that the observed device configuration already matched the
	// desired configuration and no change was pushed.
	InSyncReason = "InSync"

	// ErrorReason indicates that an error occurred while reconciling the resource.
	ErrorReason = "Error"

	// DeviceUnreachableReason indicates that the device could not be reached.
	DeviceUnreachableReason = "DeviceUnreachable"

	// DeviceUnauthenticatedReason indicates that the controller failed to authenticate
	// against the device.
	DeviceUnauthenticatedReason = "DeviceUnauthenticated"
)
