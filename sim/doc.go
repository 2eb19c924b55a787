// Package sim provides the core discrete-event simulation engine for hospital
// medical-supply inventory.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - sku.go: per-location SKU inventory state, pending shipments, emergency supply
//   - event.go: the three event kinds that drive the simulation (Demand, Delivery, Replenishment)
//   - simulator.go: the event loop, follow-on scheduling, and running statistics
//
// # Architecture
//
// A Network holds Locations (many PAR stocking points backed by a single
// Perpetual warehouse), each owning its own SKU instances. The builder wires
// every PAR SKU to the Perpetual SKU of the same id so that demand shortfalls
// can be covered by emergency transfers. Once finalized the structure is
// immutable; only the runtime fields of SKUs (current level, pending
// shipments, stockout counters) change, and only through event processing.
//
// Sub-packages:
//   - sim/scenario/: YAML/CSV scenario loading and network construction
//   - sim/trace/: per-run stockout and emergency-transfer trace recording
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - ReplenishmentPolicy: decide whether and how much a SKU reorders
//   - InventoryObserver: receive inventory-change notifications
//   - Event: timestamped unit of work executed by the Simulator
package sim
