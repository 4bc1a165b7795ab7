// Package models defines the core domain records for milkbook.
//
// # Records
//
//   - MilkEntry: one milk collection event (session, measurements, amount)
//   - CustomerProfile: a registered farmer
//   - BillingInvoice / BillingLineItem: point-in-time billing snapshots
//   - AdvanceEntry / SupplementEntry: cash and supplement advances
//   - RateChartRow: fat/SNF rate table rows
//   - FeedEntry: feed distribution records
//   - User: operator account for login
//
// # Design principles
//
//  1. Records are plain values: no behavior beyond construction helpers,
//     no pointers between records; relationships use id strings.
//  2. Computation over these records lives in the ledger package and never
//     mutates its inputs; every derived view is a newly constructed value.
//  3. Invoices are snapshots: totals and the farmer display name are frozen
//     at creation and never re-derived from later state.
package models
