// Copyright (C) 2024 The HARMONIA-NG Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

//go:build !amd64
// +build !amd64

package harmonia

// Accelerated reports whether batching messages into groups of 4 for
// Sum256X4 is likely to be worthwhile on this host. Outside amd64 there is
// no capability probe to consult, so this conservatively reports false;
// Sum256X4 remains correct (just not specially fast) regardless.
func Accelerated() bool {
	return false
}
