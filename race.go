// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringq

// RaceEnabled is true when the race detector is active.
// Tests use it to skip concurrent producer/consumer scenarios: slot data is
// published through the ready flag, an ordering the race detector cannot see.
const RaceEnabled = true
