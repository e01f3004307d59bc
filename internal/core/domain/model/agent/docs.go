// Package agent contains the Agent aggregate: a courier identity with a
// unique login, a credential hash and an active flag. Agents are created
// once via registration and referenced by parcels and delivery proofs;
// nothing in the tracking core mutates them afterwards.
package agent
