/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	ToolName = "ratingsheet"
	Version  = "0.3.2"

	DefaultOutputName = "ratings"
	DefaultConfigFile = "ratingsheet.toml"
)
