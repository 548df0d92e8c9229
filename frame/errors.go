/*
 * errors.go, part of molview
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package frame

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched (with errors.Is) by the errors returned when
// a camera pose is requested with an impossible field of view or padding.
// These are programming errors in the caller, retrying won't help.
var ErrInvalidParameter = errors.New("invalid parameter")

// Error is the error type for the frame package. It fullfills chem.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
	invalid  bool
}

func newInvalidParameter(msg string) *Error {
	return &Error{message: msg, critical: true, invalid: true}
}

func (err *Error) Error() string {
	return fmt.Sprintf("frame: %s", err.message)
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

// InvalidParameter returns true if the error was caused by a parameter out of range.
func (err *Error) InvalidParameter() bool { return err.invalid }

// Is allows errors.Is(err, ErrInvalidParameter).
func (err *Error) Is(target error) bool {
	return err.invalid && target == ErrInvalidParameter
}

// errDecorate decorates the error with the caller's name before returning it,
// if it is a frame Error.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(*Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
