// Package complaint manages maintenance complaints and the authorisation
// gate over them.
//
// A complaint is filed by a tenant and permanently bound to the landlord
// the tenant registered under. Tenants list what they filed; landlords
// list and resolve what was filed against them. Status is a closed set
// (pending, in-progress, resolved) with free transitions, mutable only by
// the bound landlord.
package complaint
