// Package order implements the Order aggregate of the fulfillment lifecycle.
//
// The aggregate owns its line items (Item) and enforces the consistency
// discipline shared by all five workflows: the order-level Status is derived
// from the minimum progress rank across non-canceled items (DeriveStatus),
// item-level transitions are restricted to a closed design-phase adjacency
// set (ItemStatus.ValidateTransition), and terminal outcomes are status
// codes rather than deletion.
//
// The package also provides the reprint order-code versioning scheme
// (ParseReprintCode, FormatReprintCode, NextReprintCode) used when an
// approved reprint spawns a derived order.
package order
