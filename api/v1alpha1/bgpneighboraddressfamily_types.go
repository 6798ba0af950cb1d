// SPDX-FileCopyrightText: 2026 The bgpaf-operator authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// BGPNeighborAddressFamilySpec defines the desired state of BGPNeighborAddressFamily.
type BGPNeighborAddressFamilySpec struct {
	// DeviceRef is the name of the Device this object belongs to. The Device object must exist in the same namespace.
	// Immutable.
	// +required
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="DeviceRef is immutable"
	DeviceRef LocalObjectReference `json:"deviceRef"`

	// ASNumber is the autonomous system number (ASN) of the BGP instance the neighbor belongs to.
	// Supports both plain format (1-4294967295) and dotted notation (0-65535.0-65535) as per RFC 5396.
	// Dotted notation is normalized to plain format before it is written to the device; the
	// normalized value is reported in the status.
	// Immutable.
	// +required
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="ASNumber is immutable"
	ASNumber intstr.IntOrString `json:"asNumber"`

	// Neighbor identifies the peer this address-family configuration applies to.
	// Depending on PeerType, this is either the IPv4/IPv6 address of the peer or
	// the name of a peer-template.
	// Immutable.
	// +required
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="Neighbor is immutable"
	Neighbor string `json:"neighbor"`

	// PeerType declares whether Neighbor names an IP-addressed peer or a peer-template.
	// Immutable.
	// +optional
	// +kubebuilder:default=IP
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="PeerType is immutable"
	PeerType BGPNeighborPeerType `json:"peerType,omitempty"`

	// AddressFamily selects the address family this sub-configuration applies to.
	// Immutable.
	// +required
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="AddressFamily is immutable"
	AddressFamily BGPAddressFamilyType `json:"addressFamily"`

	// Activate controls whether the address family is enabled for the neighbor.
	// When omitted, the device default (enabled) applies and an observed value equal
	// to the default is considered in sync.
	// +optional
	Activate Toggle `json:"activate,omitempty"`

	// AllowASIn is the number of occurrences of the local AS number permitted in the
	// AS path of received routes.
	// +optional
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=10
	AllowASIn *int32 `json:"allowASIn,omitempty"`

	// AdditionalPaths is the additional-paths send/receive directive for this address
	// family (e.g., "send", "receive", "send receive"). An empty value clears the
	// directive on the device.
	// +optional
	AdditionalPaths string `json:"additionalPaths,omitempty"`

	// DistributeList holds the names of the inbound and outbound distribute-lists as an
	// ordered pair [inbound, outbound]. An empty string means no filter in that direction.
	// +optional
	// +kubebuilder:validation:MinItems=2
	// +kubebuilder:validation:MaxItems=2
	// +kubebuilder:validation:items:MaxLength=140
	DistributeList []string `json:"distributeList,omitempty"`

	// NextHopSelf controls whether the device advertises itself as the next hop for
	// routes sent to the neighbor. The device default is disabled.
	// +optional
	NextHopSelf Toggle `json:"nextHopSelf,omitempty"`

	// RouteMap holds the names of the inbound and outbound route-maps as an ordered
	// pair [inbound, outbound]. An empty string means no route-map in that direction.
	// +optional
	// +kubebuilder:validation:MinItems=2
	// +kubebuilder:validation:MaxItems=2
	// +kubebuilder:validation:items:MaxLength=140
	RouteMap []string `json:"routeMap,omitempty"`

	// SenderSideLoopDetection controls whether routes whose AS path contains the
	// neighbor's AS number are withheld from the neighbor. The device default is enabled.
	// +optional
	SenderSideLoopDetection Toggle `json:"senderSideLoopDetection,omitempty"`

	// SoftReconfiguration controls whether received routes are stored unmodified so
	// inbound policy changes can be applied without resetting the session. The device
	// default is disabled.
	// +optional
	SoftReconfiguration Toggle `json:"softReconfiguration,omitempty"`
}

// BGPNeighborPeerType declares how the Neighbor field is interpreted.
// +kubebuilder:validation:Enum=IP;Template
type BGPNeighborPeerType string

const (
	// BGPNeighborPeerTypeIP indicates that Neighbor is the IP address of a peer.
	BGPNeighborPeerTypeIP BGPNeighborPeerType = "IP"
	// BGPNeighborPeerTypeTemplate indicates that Neighbor is the name of a peer-template.
	BGPNeighborPeerTypeTemplate BGPNeighborPeerType = "Template"
)

// BGPAddressFamilyType represents the BGP address family identifier (AFI/SAFI combination).
// +kubebuilder:validation:Enum=IPv4Unicast;IPv6Unicast
type BGPAddressFamilyType string

const (
	// BGPAddressFamilyIPv4Unicast represents the IPv4 Unicast address family (AFI=1, SAFI=1).
	BGPAddressFamilyIPv4Unicast BGPAddressFamilyType = "IPv4Unicast"
	// BGPAddressFamilyIPv6Unicast represents the IPv6 Unicast address family (AFI=2, SAFI=1).
	BGPAddressFamilyIPv6Unicast BGPAddressFamilyType = "IPv6Unicast"
)

// Toggle is a tri-state switch for neighbor address-family properties.
// Omitting the field leaves the property unmanaged: the device default applies
// and an observed value equal to that default is considered in sync.
// +kubebuilder:validation:Enum=Enabled;Disabled
type Toggle string

const (
	// ToggleEnabled explicitly enables the property on the device.
	ToggleEnabled Toggle = "Enabled"
	// ToggleDisabled explicitly disables the property on the device.
	ToggleDisabled Toggle = "Disabled"
)

// BoolOrDefault resolves the toggle to a boolean, falling back to def when the
// toggle is absent.
func (t Toggle) BoolOrDefault(def bool) bool {
	switch t {
	case ToggleEnabled:
		return true
	case ToggleDisabled:
		return false
	default:
		return def
	}
}

// BGPNeighborAddressFamilyStatus defines the observed state of BGPNeighborAddressFamily.
type BGPNeighborAddressFamilyStatus struct {
	// ASNumber is the normalized plain-format AS number as configured on the device.
	// Dotted notation in the spec (e.g., "1.5") is reported here as its 32-bit integer
	// equivalent (e.g., "65541").
	// +optional
	ASNumber string `json:"asNumber,omitempty"`

	// ObservedGeneration reflects the .metadata.generation that was last processed by the controller.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// The conditions are a list of status objects that describe the state of the resource.
	// +listType=map
	// +listMapKey=type
	// +patchStrategy=merge
	// +patchMergeKey=type
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=bgpneighboraddressfamilies
// +kubebuilder:resource:singular=bgpneighboraddressfamily
// +kubebuilder:resource:shortName=bgpnaf
// +kubebuilder:printcolumn:name="Device",type=string,JSONPath=`.spec.deviceRef.name`
// +kubebuilder:printcolumn:name="Neighbor",type=string,JSONPath=`.spec.neighbor`
// +kubebuilder:printcolumn:name="Family",type=string,JSONPath=`.spec.addressFamily`
// +kubebuilder:printcolumn:name="ASN",type=string,JSONPath=`.status.asNumber`,priority=1
// +kubebuilder:printcolumn:name="Ready",type=string,JSONPath=`.status.conditions[?(@.type=="Ready")].status`
// +kubebuilder:printcolumn:name="Configured",type=string,JSONPath=`.status.conditions[?(@.type=="Configured")].status`,priority=1
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// BGPNeighborAddressFamily is the Schema for the bgpneighboraddressfamilies API
type BGPNeighborAddressFamily struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// Specification of the desired state of the resource.
	// More info: https://git.k8s.io/community/contributors/devel/sig-architecture/api-conventions.md#spec-and-status
	// +required
	Spec BGPNeighborAddressFamilySpec `json:"spec"`

	// Status of the resource. This is set and updated automatically.
	// Read-only.
	// More info: https://git.k8s.io/community/contributors/devel/sig-architecture/api-conventions.md#spec-and-status
	// +optional
	Status BGPNeighborAddressFamilyStatus `json:"status,omitempty,omitzero"`
}

// GetConditions implements conditions.Getter.
func (af *BGPNeighborAddressFamily) GetConditions() []metav1.Condition {
	return af.Status.Conditions
}

// SetConditions implements conditions.Setter.
func (af *BGPNeighborAddressFamily) SetConditions(conditions []metav1.Condition) {
	af.Status.Conditions = conditions
}

// +kubebuilder:object:root=true

// BGPNeighborAddressFamilyList contains a list of BGPNeighborAddressFamily
type BGPNeighborAddressFamilyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []BGPNeighborAddressFamily `json:"items"`
}

func init() {
	SchemeBuilder.Register(&BGPNeighborAddressFamily{}, &BGPNeighborAddressFamilyList{})
}
