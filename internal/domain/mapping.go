package domain

// Projection functions between entities and their wire DTOs. One function per
// direction per DTO variant; no reflection, no validation, no I/O.

// ToTrailDto projects a trail entity into its read DTO.
func ToTrailDto(t Trail) TrailDto {
	return TrailDto{
		ID:             t.ID,
		Name:           t.Name,
		DistanceKm:     t.DistanceKm,
		ElevationGainM: t.ElevationGainM,
		Difficulty:     t.Difficulty,
		NationalParkID: t.NationalParkID,
	}
}

// ToTrailDtos projects a slice of trail entities into read DTOs.
func ToTrailDtos(trails []Trail) []TrailDto {
	dtos := make([]TrailDto, 0, len(trails))
	for _, t := range trails {
		dtos = append(dtos, ToTrailDto(t))
	}
	return dtos
}

// TrailFromCreateDto builds a trail entity from a create DTO. The identifier
// is left zero for storage to assign.
func TrailFromCreateDto(d TrailCreateDto) Trail {
	return Trail{
		Name:           d.Name,
		DistanceKm:     d.DistanceKm,
		ElevationGainM: d.ElevationGainM,
		Difficulty:     d.Difficulty,
		NationalParkID: d.NationalParkID,
	}
}

// TrailFromUpdateDto builds a trail entity from an update DTO, carrying the
// identifier through.
func TrailFromUpdateDto(d TrailUpdateDto) Trail {
	return Trail{
		ID:             d.ID,
		Name:           d.Name,
		DistanceKm:     d.DistanceKm,
		ElevationGainM: d.ElevationGainM,
		Difficulty:     d.Difficulty,
		NationalParkID: d.NationalParkID,
	}
}

// ToNationalParkDto projects a park entity into its read DTO.
func ToNationalParkDto(p NationalPark) NationalParkDto {
	return NationalParkDto{
		ID:          p.ID,
		Name:        p.Name,
		State:       p.State,
		Established: p.Established,
		Created:     p.Created,
	}
}

// ToNationalParkDtos projects a slice of park entities into read DTOs.
func ToNationalParkDtos(parks []NationalPark) []NationalParkDto {
	dtos := make([]NationalParkDto, 0, len(parks))
	for _, p := range parks {
		dtos = append(dtos, ToNationalParkDto(p))
	}
	return dtos
}

// NationalParkFromCreateDto builds a park entity from a create DTO.
func NationalParkFromCreateDto(d NationalParkCreateDto) NationalPark {
	return NationalPark{
		Name:        d.Name,
		State:       d.State,
		Established: d.Established,
	}
}

// NationalParkFromUpdateDto builds a park entity from an update DTO.
func NationalParkFromUpdateDto(d NationalParkUpdateDto) NationalPark {
	return NationalPark{
		ID:          d.ID,
		Name:        d.Name,
		State:       d.State,
		Established: d.Established,
	}
}
