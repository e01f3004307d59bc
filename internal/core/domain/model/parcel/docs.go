// Package parcel contains the Parcel aggregate and its supporting value
// objects: TrackingID (the caller-supplied external identity), Address (the
// destination, created together with the parcel) and Status (the lifecycle
// state machine).
//
// The only transition exercised by this service is {Assigned, En Ruta} ->
// Delivered, performed via Parcel.Deliver() when proof of delivery is
// registered. En Ruta and Cancelled remain valid enumeration members that
// external collaborators may set.
package parcel
