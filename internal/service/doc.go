// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the per-kind resource APIs on top of the
// transport adapters.
//
// Labels and inboxes live on the conversation platform under
// /api/v1/accounts/{account}/..., instances live on the provisioning service
// under /instance/.... Each API validates outgoing fields, shapes the request
// body the remote service expects and normalises the response into
// [models.Resource] values. Transport errors are returned unchanged.
package service
