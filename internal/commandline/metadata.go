// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandline

// Metadata holds the package metadata overrides of the -metadata argument.
// Fields that were not given are empty.
type Metadata struct {
	ID          string
	Title       string
	Description string
	Authors     string
}

func parseMetadata(value string) (*Metadata, error) {
	properties, err := ParseArgumentProperties(ArgMetadata, value)
	if err != nil {
		return nil, err
	}

	metadata := &Metadata{}

	for name, v := range properties.All() {
		switch {
		case equalName(name, PropMetadataID):
			metadata.ID = v
		case equalName(name, PropMetadataTitle):
			metadata.Title = v
		case equalName(name, PropMetadataDescription):
			metadata.Description = v
		case equalName(name, PropMetadataAuthors):
			metadata.Authors = v
		default:
			return nil, propertyNotRecognized(ArgMetadata, name)
		}
	}

	return metadata, nil
}
