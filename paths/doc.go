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

// Package paths prepares paths to es40storage resources, such as the
// preferences file and saved state files.
//
// If a directory named ".es40storage" exists in the current working directory
// then that is used as the base path. Otherwise the base path is the
// "es40storage" directory inside the user's configuration directory, as
// returned by os.UserConfigDir(). On a modern Linux system:
//
//	/home/user/.config/es40storage/preferences
package paths
