/*
Package recyclebin reads Windows Recycle Bin "$I" metadata files.

When a file is deleted to the Recycle Bin, Windows renames it to $R<id><ext>
and writes a small companion $I<id><ext> record holding the original path,
the file size and the deletion time.

# Basic Usage

Parse a record from disk:

	rec, err := recyclebin.ParseFile(`C:\$Recycle.Bin\S-1-5-21-...\$I3ZK9Q1.docx`)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(rec)
	// C:\Users\me\report.docx | Deleted on 22/10/2020 22:21:18 UTC

Decode bytes you already have:

	rec, err := recyclebin.Decode(data)
	if errors.Is(err, recyclebin.ErrInsufficientData) {
	    // shorter than the 28-byte fixed header
	}

# Layout

Only the Windows 10 layout is decoded: a 24-byte fixed header, a 4-byte name
length, then the UTF-16LE path running to the end of the file. Malformed
UTF-16 never fails; bad code units decode to U+FFFD.
*/
package recyclebin
