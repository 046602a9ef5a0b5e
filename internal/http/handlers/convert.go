package handlers

import "parcel-marketplace/internal/domain"

func (req createDeliveryRequest) toModel() domain.NewDelivery {
	return domain.NewDelivery{
		PickupAddress:  req.PickupAddress,
		PickupLat:      req.PickupLat,
		PickupLng:      req.PickupLng,
		DropoffAddress: req.DropoffAddress,
		DropoffLat:     req.DropoffLat,
		DropoffLng:     req.DropoffLng,
		Category:       req.Category,
		WeightKg:       req.WeightKg,
		DeclaredValue:  req.DeclaredValue,
		PhotoRefs:      req.PhotoRefs,
		Timing:         req.Timing,
		ScheduledAt:    req.ScheduledAt,
	}
}

func (req kycRequest) toModel() domain.KYCSubmission {
	return domain.KYCSubmission{
		Phone:         req.Phone,
		VehicleType:   req.VehicleType,
		IDDocumentRef: req.IDDocumentRef,
		SelfieRef:     req.SelfieRef,
	}
}

func deliveryToResponse(d domain.Delivery) deliveryDTO {
	photos := d.Parcel.PhotoRefs
	if photos == nil {
		photos = []string{}
	}
	return deliveryDTO{
		ID:        d.ID,
		SenderID:  d.SenderID,
		CarrierID: d.CarrierID,
		Pickup:    placeDTO{Address: d.Pickup.Address, Lat: d.Pickup.Location.Lat, Lng: d.Pickup.Location.Lng},
		Dropoff:   placeDTO{Address: d.Dropoff.Address, Lat: d.Dropoff.Location.Lat, Lng: d.Dropoff.Location.Lng},
		Parcel: parcelDTO{
			Category:      d.Parcel.Category,
			WeightKg:      d.Parcel.WeightKg,
			DeclaredValue: d.Parcel.DeclaredValue,
			PhotoRefs:     photos,
		},
		PriceRs:     d.PriceRs,
		DistanceKm:  d.DistanceKm,
		Timing:      d.Timing,
		ScheduledAt: d.ScheduledAt,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		MatchedAt:   d.MatchedAt,
		PickedUpAt:  d.PickedUpAt,
		DeliveredAt: d.DeliveredAt,
		CancelledAt: d.CancelledAt,
	}
}

func deliveriesToResponse(list []domain.Delivery) []deliveryDTO {
	out := make([]deliveryDTO, 0, len(list))
	for _, d := range list {
		out = append(out, deliveryToResponse(d))
	}
	return out
}

func candidatesToResponse(list []domain.Candidate) []candidateDTO {
	out := make([]candidateDTO, 0, len(list))
	for _, c := range list {
		out = append(out, candidateDTO{Delivery: deliveryToResponse(c.Delivery), DistanceKm: c.DistanceKm})
	}
	return out
}

func eventsToResponse(list []domain.DeliveryEvent) []eventDTO {
	out := make([]eventDTO, 0, len(list))
	for _, e := range list {
		out = append(out, eventDTO{ID: e.ID, From: e.From, To: e.To, ActorID: e.ActorID, OccurredAt: e.OccurredAt})
	}
	return out
}

func locationsToResponse(list []domain.LocationPing) []locationDTO {
	out := make([]locationDTO, 0, len(list))
	for _, p := range list {
		out = append(out, locationDTO{
			CarrierID:  p.CarrierID,
			Lat:        p.Location.Lat,
			Lng:        p.Location.Lng,
			RecordedAt: p.RecordedAt,
		})
	}
	return out
}

func messagesToResponse(list []domain.Message) []messageDTO {
	out := make([]messageDTO, 0, len(list))
	for _, m := range list {
		out = append(out, messageDTO(m))
	}
	return out
}

func profileToResponse(p domain.CarrierProfile) carrierProfileDTO {
	out := carrierProfileDTO{
		UserID:             p.UserID,
		Phone:              p.Phone,
		VehicleType:        p.VehicleType,
		VerificationStatus: p.VerificationStatus,
		RejectionReason:    p.RejectionReason,
		ApprovedAt:         p.ApprovedAt,
		Online:             p.Online,
		CreatedAt:          p.CreatedAt,
	}
	if p.Destination != nil {
		out.Destination = &coordinateDTO{Lat: p.Destination.Lat, Lng: p.Destination.Lng}
	}
	return out
}

func profilesToResponse(list []domain.CarrierProfile) []carrierProfileDTO {
	out := make([]carrierProfileDTO, 0, len(list))
	for _, p := range list {
		out = append(out, profileToResponse(p))
	}
	return out
}
