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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/es40emu/storage/test"
)

func TestSuccessValues(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, uint8(0xff), 0xff)
	test.ExpectEquality(t, "foo", "foo")
	test.ExpectInequality(t, "foo", "bar")
	test.DemandEquality(t, len([]int{1, 2, 3}), 3)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectSuccess(t, w.Compare(""))

	fmt.Fprintf(w, "foo %d", 10)
	test.ExpectSuccess(t, w.Compare("foo 10"))
	test.ExpectEquality(t, w.String(), "foo 10")

	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
