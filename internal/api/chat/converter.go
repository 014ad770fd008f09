package chat

import "github.com/futig/querysphere-backend/internal/entity"

// toMessage converts the wire message to the domain entity
func toMessage(dto *entity.MessageDTO) *entity.Message {
	sources := make([]entity.Source, 0, len(dto.Sources))
	for _, s := range dto.Sources {
		sources = append(sources, entity.Source{URL: s.URL, Title: s.Title})
	}

	msg := &entity.Message{
		ID:        dto.ID,
		CreatedAt: dto.CreatedAt,
		Role:      entity.Role(dto.Role),
		Content:   dto.Content,
		RunID:     dto.RunID,
		Name:      dto.Name,
		Sources:   sources,
	}
	if dto.FunctionCall != nil {
		msg.FunctionName = dto.FunctionCall.Name
	}

	return msg
}

// toRenderResponse converts a rendered message to the response DTO
func toRenderResponse(m *entity.RenderedMessage) *entity.RenderMessageResponse {
	sources := make([]entity.RenderedSourceDTO, 0, len(m.Sources))
	for i, s := range m.Sources {
		sources = append(sources, entity.RenderedSourceDTO{
			Index:       i,
			URL:         s.URL,
			Title:       s.Title,
			Highlighted: m.Highlighted != nil && *m.Highlighted == i,
		})
	}

	segments := make([]entity.SegmentDTO, 0, len(m.Segments))
	for _, seg := range m.Segments {
		segments = append(segments, toSegmentDTO(seg))
	}

	resp := &entity.RenderMessageResponse{
		ID:          m.ID,
		Role:        string(m.Role),
		ShowSources: m.Role != entity.RoleUser && len(sources) > 0,
		Sources:     sources,
		Highlighted: m.Highlighted,
		Segments:    segments,
	}
	if m.FunctionName != "" {
		resp.FunctionCall = &entity.FunctionCallDTO{Name: m.FunctionName}
	}

	return resp
}

func toSegmentDTO(seg entity.Segment) entity.SegmentDTO {
	dto := entity.SegmentDTO{
		Type: string(seg.Kind),
		Text: seg.Text,
	}

	if seg.Citation != nil {
		index := seg.Citation.Index
		dto.SourceIndex = &index
		dto.Source = &entity.SourceDTO{
			URL:   seg.Citation.Source.URL,
			Title: seg.Citation.Source.Title,
		}
		dto.Highlighted = seg.Citation.Highlighted
	}

	return dto
}
