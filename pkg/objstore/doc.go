/*

Package objstore defines a simple and standardized way of interacting with cloud object storage such as
provided by AWS S3, or with anything else that can present buckets of named objects (see the localstore
package for a plain-directory implementation).

The interface is deliberately minimal: a handful of verb operations (existence probe, create/list/delete
bucket, put/get/delete object) that every backend can support without ceremony. We imagine that the
interface may grow slowly, or better yet, support extensions to enable additional functionality.

Limitations and Design Considerations

Access control - deferred. We prefer to start with no access control rather than add something now and
change it later.

Multipart uploads - not supported. Transfers take local file paths rather than readers so that backends
are free to use whatever transfer manager their SDK provides.

Errors - backends report failures as ordinary error values. The one structured requirement is the
existence probe: BucketExists must interpret the backend's client-error classes (bad request, forbidden,
not found) as "absent" and re-raise anything else unchanged, so that callers can distinguish a missing
bucket from a broken backend.

Consistency guarantees - left unspecified to allow implementations to experiment with them. Every
existence or membership check round-trips to the backend; nothing is cached locally.

Object versions - not part of the specification.

Physical locations - backends may honor a configured region or location constraint, but there is no way
to place individual buckets or objects.
*/
package objstore
