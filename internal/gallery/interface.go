package gallery

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateImageInput) (CreateImageOutput, error)
	List(ctx context.Context, input ListImagesInput) (ListImagesOutput, error)
	Detail(ctx context.Context, id string) (DetailImageOutput, error)
	Update(ctx context.Context, input UpdateImageInput) (UpdateImageOutput, error)
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
}
