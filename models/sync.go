// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LinkSyncReport describes the outcome of one sync pass for one link.
type LinkSyncReport struct {
	LinkID   string `json:"link_id"`
	Success  bool   `json:"success"`
	Accounts int    `json:"accounts"`
	Added    int    `json:"added"`
	Modified int    `json:"modified"`
	Removed  int    `json:"removed"`

	// Restarts counts passes discarded because the provider reported
	// a mutation during pagination.
	Restarts int `json:"restarts"`

	// Err is the failure of the pass; it never leaves the process.
	Err error `json:"-"`

	// Error is the user-facing failure reason.
	Error string `json:"error,omitempty"`
}

// SyncReport aggregates per-link outcomes of a sync run over all links.
type SyncReport struct {
	Links     []LinkSyncReport `json:"links"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

// Add appends a link outcome and updates the counters.
func (r *SyncReport) Add(link LinkSyncReport) {
	r.Links = append(r.Links, link)
	if link.Success {
		r.Succeeded++
		return
	}
	r.Failed++
}

// FailedLinks returns the ids of links whose pass failed.
func (r SyncReport) FailedLinks() []string {
	var ids []string
	for _, l := range r.Links {
		if !l.Success {
			ids = append(ids, l.LinkID)
		}
	}
	return ids
}
