package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// Error kinds. Every failure surfaced by the engine carries exactly one of
// these so callers can branch with errors.Is.
var (
	// ErrNetwork is returned on transport failures and timeouts.
	ErrNetwork = zerr.New("network error")

	// ErrProtocol is returned when a remote endpoint answers with a non-success status.
	ErrProtocol = zerr.New("protocol error")

	// ErrDecode is returned when a remote or local document cannot be decoded.
	ErrDecode = zerr.New("decode error")

	// ErrIntegrity is returned when downloaded content does not match its declared size or hash.
	ErrIntegrity = zerr.New("integrity error")

	// ErrConfiguration is returned for invalid or incomplete configuration.
	ErrConfiguration = zerr.New("configuration error")

	// ErrFilesystem is returned for any I/O failure while extracting, copying or persisting.
	ErrFilesystem = zerr.New("filesystem error")

	// ErrGameRunning is returned when a mutating operation is attempted while the game is running.
	ErrGameRunning = zerr.New("game is currently running")

	// ErrNotFound is returned when a referenced localization, game directory or payload does not exist.
	ErrNotFound = zerr.New("not found")
)

var kinds = []error{
	ErrNetwork,
	ErrProtocol,
	ErrDecode,
	ErrIntegrity,
	ErrConfiguration,
	ErrFilesystem,
	ErrGameRunning,
	ErrNotFound,
}

var (
	// ErrCatalogRequestFailed is returned when the catalog request cannot be sent or read.
	ErrCatalogRequestFailed = zerr.New("failed to request localization catalog")

	// ErrCatalogStatus is returned when the catalog source answers with a non-success status.
	ErrCatalogStatus = zerr.New("catalog source returned unexpected status")

	// ErrCatalogDecodeFailed is returned when the catalog payload is malformed.
	ErrCatalogDecodeFailed = zerr.New("failed to decode localization catalog")

	// ErrDownloadRequestFailed is returned when a download cannot be started or streamed.
	ErrDownloadRequestFailed = zerr.New("failed to download file")

	// ErrDownloadStatus is returned when a download answers with a non-success status.
	ErrDownloadStatus = zerr.New("download returned unexpected status")

	// ErrDownloadWriteFailed is returned when downloaded bytes cannot be written locally.
	ErrDownloadWriteFailed = zerr.New("failed to write downloaded file")

	// ErrSizeMismatch is returned when a download's byte count differs from the declared size.
	ErrSizeMismatch = zerr.New("downloaded size does not match expected size")

	// ErrHashMismatch is returned when content does not hash to the expected digest.
	ErrHashMismatch = zerr.New("content hash does not match expected hash")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrFingerprintFailed is returned when an installed tree cannot be fingerprinted.
	ErrFingerprintFailed = zerr.New("failed to fingerprint directory")

	// ErrArchiveOpenFailed is returned when an archive cannot be opened.
	ErrArchiveOpenFailed = zerr.New("failed to open archive")

	// ErrArchiveEntryFailed is returned when a single archive entry cannot be extracted.
	ErrArchiveEntryFailed = zerr.New("failed to extract archive entry")

	// ErrUnrecognizedFormat is returned when a localization declares an unknown layout format.
	ErrUnrecognizedFormat = zerr.New("unrecognized localization format")

	// ErrPayloadNotFound is returned when no payload directory can be located in an archive.
	ErrPayloadNotFound = zerr.New("localization payload not found in archive")

	// ErrInvalidLocalizationID is returned when an id cannot be used as a directory name.
	ErrInvalidLocalizationID = zerr.New("invalid localization id")

	// ErrCommitFailed is returned when staged content cannot be committed into the game tree.
	ErrCommitFailed = zerr.New("failed to commit localization")

	// ErrUninstallFailed is returned when an installed localization cannot be removed.
	ErrUninstallFailed = zerr.New("failed to uninstall localization")

	// ErrFontCacheFailed is returned when the font cache cannot be read or written.
	ErrFontCacheFailed = zerr.New("failed to update font cache")

	// ErrInvalidFontName is returned when a font target name would escape the font directory.
	ErrInvalidFontName = zerr.New("invalid font file name")

	// ErrMetadataReadFailed is returned when the installed metadata file cannot be read.
	ErrMetadataReadFailed = zerr.New("failed to read installed metadata")

	// ErrMetadataDecodeFailed is returned when the installed metadata file cannot be parsed.
	ErrMetadataDecodeFailed = zerr.New("failed to parse installed metadata")

	// ErrMetadataWriteFailed is returned when the installed metadata file cannot be written.
	ErrMetadataWriteFailed = zerr.New("failed to write installed metadata")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings")

	// ErrSettingsDecodeFailed is returned when the settings file cannot be parsed.
	ErrSettingsDecodeFailed = zerr.New("failed to parse settings")

	// ErrSettingsWriteFailed is returned when the settings file cannot be written.
	ErrSettingsWriteFailed = zerr.New("failed to write settings")

	// ErrRuntimeConfigFailed is returned when environment overrides cannot be parsed.
	ErrRuntimeConfigFailed = zerr.New("failed to parse runtime configuration")

	// ErrNoSourceSelected is returned when no localization source is selected.
	ErrNoSourceSelected = zerr.New("no localization source selected")

	// ErrUnknownSource is returned when a source name is not configured.
	ErrUnknownSource = zerr.New("unknown localization source")

	// ErrInvalidSource is returned when a source lacks a name or URL.
	ErrInvalidSource = zerr.New("invalid localization source")

	// ErrLocalizationNotFound is returned when a localization id is not in the catalog.
	ErrLocalizationNotFound = zerr.New("localization not found")

	// ErrNotInstalled is returned when an operation requires an installed localization.
	ErrNotInstalled = zerr.New("localization is not installed")

	// ErrGameNotFound is returned when the game installation cannot be discovered.
	ErrGameNotFound = zerr.New("game installation not found")

	// ErrInvalidGameDirectory is returned when a directory does not look like a game installation.
	ErrInvalidGameDirectory = zerr.New("invalid game directory")

	// ErrProcessListFailed is returned when running processes cannot be enumerated.
	ErrProcessListFailed = zerr.New("failed to list running processes")

	// ErrGameLaunchFailed is returned when the game cannot be started.
	ErrGameLaunchFailed = zerr.New("failed to launch game")

	// ErrGameConfigFailed is returned when the game language config cannot be checked.
	ErrGameConfigFailed = zerr.New("failed to validate game language config")

	// ErrReleaseCheckFailed is returned when the latest launcher release cannot be determined.
	ErrReleaseCheckFailed = zerr.New("failed to check latest release")

	// ErrLockAcquireFailed is returned when waiting for a localization lock is abandoned.
	ErrLockAcquireFailed = zerr.New("failed to acquire localization lock")

	// ErrStagingFailed is returned when scratch space for an install cannot be prepared.
	ErrStagingFailed = zerr.New("failed to prepare staging directory")
)

// Classify tags err with one of the error kinds. A nil err stays nil.
func Classify(kind, err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(kind, err)
}

// KindOf reports the error kind carried by err, or nil when err is unclassified.
func KindOf(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// With attaches a key-value pair to a sentinel without losing its identity,
// so errors.Is keeps matching the sentinel through Classify and later With calls.
func With(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}
