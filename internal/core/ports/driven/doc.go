// Package driven defines outbound ports: interfaces the core needs
// implemented by infrastructure adapters. The only external
// collaborator of this client is the remote document service, reached
// through its two request/response contracts.
package driven
