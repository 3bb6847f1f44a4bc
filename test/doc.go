// This file is part of es40storage.
//
// es40storage is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// es40storage is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with es40storage.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions that remove common boilerplate from
// tests.
//
// The Expect*() functions report a test error and allow the test to continue.
// The Demand*() functions are fatal to the test and should be used when the
// remainder of the test depends on the value being correct.
//
// Success and failure depend on the type of the value being tested:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The CompareWriter type implements io.Writer and is used to capture output
// for later comparison.
package test
