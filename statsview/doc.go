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

// Package statsview serves runtime statistics for the running process over
// HTTP. A 512MB RAM disk is a large allocation and the memory graphs are the
// quickest way to see it being made and freed.
//
// The server is only included when building with the statsview tag:
//
//	go build -tags statsview .
//
// The monitor starts the server with the -statsview flag. The graphs are then
// at localhost:12640/debug/statsview and the standard pprof pages at
// localhost:12640/debug/pprof/
//
// In a build without the tag, Available() is false and Launch() only says so.
// The graphs are drawn by "github.com/go-echarts/statsview".
package statsview
