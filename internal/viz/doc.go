// Package viz is the interactive terminal frontend: parameter sliders
// on the left, the selected model curve and the derived-quantity
// dashboard on the right. It owns the one mutable parameter snapshot
// and passes it by value into the physics packages on every change, so
// every displayed curve and scalar reflects a single consistent state.
package viz
