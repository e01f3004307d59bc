// Package delivery contains the ProofOfDelivery aggregate: the write-once
// record binding a delivered parcel to its photo artifact, GPS fix and
// delivery timestamp.
package delivery
