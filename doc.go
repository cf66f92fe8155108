// Copyright 2026 the gsheet-keyring authors. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package gsheet-keyring implements a password store backed by a Google Sheets spreadsheet.

gsheet-keyring is intended for hosted notebook environments that have no access to an OS
credential store - each credential is kept as a row in a 'keyring' spreadsheet and looked
up by (service, username). Because the Sheets API is slow, reads go through a short-lived
cache that is discarded wholesale on any write.

Passwords are stored unencrypted in the spreadsheet - anyone with access to the Google
account (or to the sheet itself, if shared) can read them. Concurrent writers from
separate processes are not supported and can corrupt the sheet; the backing store has no
transactional isolation.

gsheet-keyring supports the following commands:

  - authorise, to authorise application access to the Google Sheets spreadsheet
  - get, to retrieve the password for a service and user
  - set, to store the password for a service and user
  - delete, to remove the password for a service and user
  - export, to download the keyring spreadsheet as a TSV file
  - import, to load credentials from a TSV file into the keyring spreadsheet
  - probe, to check whether the backend is usable and report its selection priority
  - version, to display the version information
*/
package gsheetkeyring
